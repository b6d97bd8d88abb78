/*
 * atomicdata.go, part of godftd4.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goDFTD4 is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package dftd4

//maxZ is the highest atomic number with tabulated data (Rn).
const maxZ = 86

//Element symbols, indexed by atomic number.
var symbols = [maxZ + 1]string{"",
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne", //H-Ne
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca", //Na-Ca
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn", //Sc-Zn
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr", //Ga-Zr
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn", //Nb-Sn
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd", //Sb-Nd
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", //Pm-Yb
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg", //Lu-Hg
	"Tl", "Pb", "Bi", "Po", "At", "Rn", //Tl-Rn
}

//Covalent radii (Pyykko single-bond values scaled by 4/3) in Bohr,
//indexed by atomic number. These enter the coordination number counting
//functions directly as pairwise sums.
var covalentRadius = [maxZ + 1]float64{0,
	0.80628309, 1.15903194, 3.35111409, 2.57002735, 2.14168945, 1.88972599, //H-C
	1.78894060, 1.58736983, 1.61256618, 1.68815522, 3.90543371, 3.50229217, //N-Mg
	3.17473966, 2.92277620, 2.79679446, 2.59522369, 2.49443831, 2.41884927, //Al-Ar
	4.93848392, 4.30857525, 3.72905928, 3.42670313, 3.37631043, 3.07395428, //K-Cr
	2.99836524, 2.92277620, 2.79679446, 2.77159812, 2.82199081, 2.97316889, //Mn-Zn
	3.12434697, 3.04875793, 3.04875793, 2.92277620, 2.87238350, 2.94797254, //Ga-Kr
	5.29123277, 4.66132411, 4.10700448, 3.88023736, 3.70386294, 3.47709582, //Rb-Mo
	3.22513235, 3.14954332, 3.14954332, 3.02356158, 3.22513235, 3.42670313, //Tc-Cd
	3.57788121, 3.52748851, 3.52748851, 3.42670313, 3.35111409, 3.30072139, //In-Xe
	5.84555239, 4.93848392, 4.53534237, 4.10700448, 4.43455699, 4.38416429, //Cs-Nd
	4.35896795, 4.33377160, 4.23298622, 4.25818256, 4.23298622, 4.20778987, //Pm-Dy
	4.18259352, 4.15739718, 4.13220083, 4.28337891, 4.08180814, 3.82984467, //Ho-Hf
	3.67866659, 3.45189947, 3.30072139, 3.25032870, 3.07395428, 3.09915062, //Ta-Pt
	3.12434697, 3.35111409, 3.62827390, 3.62827390, 3.80464832, 3.65347025, //Au-Po
	3.70386294, 3.57788121, //At-Rn
}

//Expectation values sqrt(0.5*sqrt(Z)*<r4>/<r2>) used to scale C6 into C8,
//indexed by atomic number.
var r4r2 = [maxZ + 1]float64{0,
	2.00734898, 1.56637132, 5.01986934, 3.85379032, 3.64446594, 3.10492822, //H-C
	2.71175247, 2.59361680, 2.38825250, 2.21522516, 6.58585536, 5.46295967, //N-Mg
	5.65216669, 4.88284902, 4.28260540, 4.04305904, 3.72939030, 3.44677035, //Al-Ar
	7.97762753, 7.07623947, 6.60844053, 6.28791364, 6.07728703, 5.54643096, //K-Cr
	5.80491167, 5.58415602, 5.41374528, 5.28497229, 5.22592821, 5.09817141, //Mn-Zn
	6.12149689, 5.54083734, 5.06696878, 4.87005108, 4.59089647, 4.31176304, //Ga-Kr
	9.55461698, 8.67396077, 7.97210197, 7.43439917, 6.58711862, 6.19536215, //Rb-Mo
	6.01517290, 5.81623410, 5.65710424, 5.52640661, 5.44263305, 5.58285373, //Tc-Cd
	7.02081898, 6.46815523, 5.98089120, 5.81686657, 5.53321815, 5.25477007, //In-Xe
	11.02204549, 10.15679528, 9.35167836, 9.06926079, 8.97241155, 8.90092807, //Cs-Nd
	8.85984840, 8.81736827, 8.79317710, 7.89969626, 8.80588454, 8.42439218, //Pm-Dy
	8.54289262, 8.47583370, 8.45090888, 8.47339339, 7.83525634, 8.20702843, //Ho-Hf
	7.70559063, 7.32755997, 7.03887381, 6.68978720, 6.05450052, 5.88752022, //Ta-Pt
	5.70661499, 5.78450695, 7.79780729, 7.26443867, 7.25954878, 7.26994879, //Au-Po
	6.58154321, 6.55929745, //At-Rn
}

//Pauling electronegativities, indexed by atomic number. Rare gases and
//some lanthanides carry interpolated values so every supported element
//has one.
var pauling = [maxZ + 1]float64{0,
	2.20, 3.00, 0.98, 1.57, 2.04, 2.55, //H-C
	3.04, 3.44, 3.98, 4.50, 0.93, 1.31, //N-Mg
	1.61, 1.90, 2.19, 2.58, 3.16, 3.50, //Al-Ar
	0.82, 1.00, 1.36, 1.54, 1.63, 1.66, //K-Cr
	1.55, 1.83, 1.88, 1.91, 1.90, 1.65, //Mn-Zn
	1.81, 2.01, 2.18, 2.55, 2.96, 3.00, //Ga-Kr
	0.82, 0.95, 1.22, 1.33, 1.60, 2.16, //Rb-Mo
	1.90, 2.20, 2.28, 2.20, 1.93, 1.69, //Tc-Cd
	1.78, 1.96, 2.05, 2.10, 2.66, 2.60, //In-Xe
	0.79, 0.89, 1.10, 1.12, 1.13, 1.14, //Cs-Nd
	1.15, 1.17, 1.18, 1.20, 1.21, 1.22, //Pm-Dy
	1.23, 1.24, 1.25, 1.26, 1.27, 1.30, //Ho-Hf
	1.50, 2.36, 1.90, 2.20, 2.20, 2.28, //Ta-Pt
	2.54, 2.00, 1.62, 2.33, 2.02, 2.00, //Au-Po
	2.20, 2.20, //At-Rn
}

//Effective nuclear charges from the def2-ECPs, indexed by atomic number.
//Stored as float64 since they only appear in real-valued ratios.
var zeff = [maxZ + 1]float64{0,
	1, 2, 3, 4, 5, 6, //H-C
	7, 8, 9, 10, 11, 12, //N-Mg
	13, 14, 15, 16, 17, 18, //Al-Ar
	19, 20, 21, 22, 23, 24, //K-Cr
	25, 26, 27, 28, 29, 30, //Mn-Zn
	31, 32, 33, 34, 35, 36, //Ga-Kr
	9, 10, 11, 12, 13, 14, //Rb-Mo
	15, 16, 17, 18, 19, 20, //Tc-Cd
	21, 22, 23, 24, 25, 26, //In-Xe
	9, 10, 11, 12, 13, 14, //Cs-Nd
	15, 16, 17, 18, 19, 20, //Pm-Dy
	21, 22, 23, 24, 25, 12, //Ho-Hf
	13, 14, 15, 16, 17, 18, //Ta-Pt
	19, 20, 21, 22, 23, 24, //Au-Po
	25, 26, //At-Rn
}

//Element-wise chemical hardnesses entering the charge scaling function,
//indexed by atomic number.
var gam = [maxZ + 1]float64{0,
	0.47259288, 0.92203391, 0.17452888, 0.25700733, 0.33949086, 0.42195412, //H-C
	0.50438193, 0.58691863, 0.66931351, 0.75191607, 0.17964105, 0.22157276, //N-Mg
	0.26348578, 0.30539645, 0.34734014, 0.38924725, 0.43115670, 0.47308269, //Al-Ar
	0.17105469, 0.20276244, 0.21007322, 0.21739647, 0.22471039, 0.23201501, //K-Cr
	0.23933969, 0.24665638, 0.25398255, 0.26128863, 0.26859476, 0.27592565, //Mn-Zn
	0.30762999, 0.33931580, 0.37235985, 0.40273549, 0.43445776, 0.46611708, //Ga-Kr
	0.15585079, 0.18649324, 0.19356210, 0.20063311, 0.20770522, 0.21477254, //Rb-Mo
	0.22184614, 0.22891872, 0.23598621, 0.24305612, 0.25013018, 0.25719937, //Tc-Cd
	0.28784780, 0.31848673, 0.34912431, 0.37976593, 0.41040808, 0.44105777, //In-Xe
	0.14026904, 0.16827098, 0.17534534, 0.17822000, 0.17974000, 0.18126000, //Cs-Nd
	0.18278000, 0.18430000, 0.18582000, 0.18734000, 0.18886000, 0.19038000, //Pm-Dy
	0.19190000, 0.19342000, 0.19494000, 0.19646000, 0.19798000, 0.21063311, //Ho-Hf
	0.21770522, 0.22477254, 0.23184614, 0.23891872, 0.24598621, 0.25305612, //Ta-Pt
	0.26013018, 0.26719937, 0.29784780, 0.32848673, 0.35912431, 0.38976593, //Au-Po
	0.42040808, 0.45105777, //At-Rn
}
