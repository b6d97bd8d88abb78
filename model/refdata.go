/*
 * refdata.go, part of godftd4.
 *
 *
 * Copyright 2025 Raul Mera <rmera{at}usachDOTcl>
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

package model

import dftd4 "github.com/rmera/godftd4"

//maxRef is the largest number of reference systems any element carries.
const maxRef = 5

//refn is the number of reference systems per element.
var refn = [dftd4.MaxZ + 1]int{0,
	2, 1, 2, 3, 4, 5, 4, 3, 2, 1, 2, 3, //H-Mg
	4, 5, 4, 3, 2, 1, 2, 3, 4, 4, 4, 4, //Al-Cr
	4, 4, 4, 4, 4, 4, 4, 5, 4, 3, 2, 1, //Mn-Kr
	2, 3, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, //Rb-Cd
	4, 5, 4, 3, 2, 1, 2, 3, 3, 3, 3, 3, //In-Nd
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 4, //Pm-Hf
	4, 4, 4, 4, 4, 4, 4, 4, 4, 5, 4, 3, //Ta-Po
	2, 1, //At-Rn
}

//refcn holds the coordination numbers of the reference systems.
var refcn = [dftd4.MaxZ + 1][maxRef]float64{
	1: {0.00000000, 0.97351191}, //H
	2: {0.00000000}, //He
	3: {0.00000000, 1.00086714}, //Li
	4: {0.00000000, 0.98426234, 2.05182631}, //Be
	5: {0.00000000, 1.02758882, 1.97325500, 2.89577077}, //B
	6: {0.00000000, 0.96585309, 1.99653251, 3.09965808, 4.07802411}, //C
	7: {0.00000000, 1.03415372, 2.03301473, 2.92403305}, //N
	8: {0.00000000, 0.97239206, 1.94377210}, //O
	9: {0.00000000, 1.01576542}, //F
	10: {0.00000000}, //Ne
	11: {0.00000000, 0.98585868}, //Na
	12: {0.00000000, 1.02646776, 1.97002721}, //Mg
	13: {0.00000000, 0.96628379, 2.00006217, 3.10119852}, //Al
	14: {0.00000000, 1.03449601, 2.02986037, 2.92047481, 3.88355154}, //Si
	15: {0.00000000, 0.97134244, 1.94594597, 3.04259450}, //P
	16: {0.00000000, 1.01732099, 2.06787712}, //S
	17: {0.00000000, 0.99733871}, //Cl
	18: {0.00000000}, //Ar
	19: {0.00000000, 1.02527936}, //K
	20: {0.00000000, 0.96680027, 2.00359168}, //Ca
	21: {0.00000000, 1.37966739, 2.70217340, 3.88949186}, //Sc
	22: {0.00000000, 1.29382098, 2.59767647, 4.06317267}, //Ti
	23: {0.00000000, 1.35844331, 2.75590417, 3.99628284}, //V
	24: {0.00000000, 1.32744322, 2.57430259, 3.94354849}, //Cr
	25: {0.00000000, 1.31887353, 2.74443675, 4.10578963}, //Mn
	26: {0.00000000, 1.36536886, 2.61841122, 3.86516859}, //Fe
	27: {0.00000000, 1.28986828, 2.67614940, 4.13800501}, //Co
	28: {0.00000000, 1.37988889, 2.69777597, 3.88529844}, //Ni
	29: {0.00000000, 1.29261922, 2.60093383, 4.06939197}, //Cu
	30: {0.00000000, 1.36039477, 2.75441182, 3.98923088}, //Zn
	31: {0.00000000, 0.99383735, 1.93030771, 2.96256012}, //Ga
	32: {0.00000000, 0.99084688, 2.06020486, 3.07577355, 3.93364184}, //Ge
	33: {0.00000000, 1.02271281, 1.96083322, 2.90043038}, //As
	34: {0.00000000, 0.96808509, 2.01061433}, //Se
	35: {0.00000000, 1.03499396}, //Br
	36: {0.00000000}, //Kr
	37: {0.00000000, 1.02170803}, //Rb
	38: {0.00000000, 0.99210797, 1.93006577}, //Sr
	39: {0.00000000, 1.32341587, 2.74923865, 4.09601613}, //Y
	40: {0.00000000, 1.36178825, 2.61061023, 3.86965016}, //Zr
	41: {0.00000000, 1.29180021, 2.68545280, 4.13967519}, //Nb
	42: {0.00000000, 1.37997631, 2.68875506, 3.87779695}, //Mo
	43: {0.00000000, 1.29052924, 2.60794153, 4.08128557}, //Tc
	44: {0.00000000, 1.36408634, 2.75076180, 3.97522702}, //Ru
	45: {0.00000000, 1.32053155, 2.57333568, 3.96350755}, //Rh
	46: {0.00000000, 1.32572779, 2.75132743, 4.09075659}, //Pd
	47: {0.00000000, 1.35988703, 2.60691878, 3.87239144}, //Ag
	48: {0.00000000, 1.29292596, 2.69003870, 4.13997810}, //Cd
	49: {0.00000000, 1.03488150, 2.01311590, 2.90588097}, //In
	50: {0.00000000, 0.96723475, 1.95875553, 3.06519721, 4.12899609}, //Sn
	51: {0.00000000, 1.02436280, 2.06146006, 2.97623307}, //Sb
	52: {0.00000000, 0.98871379, 1.93011582}, //Te
	53: {0.00000000, 0.99604430}, //I
	54: {0.00000000}, //Xe
	55: {0.00000000, 0.97061588}, //Cs
	56: {0.00000000, 1.03469203, 2.00963214}, //Ba
	57: {0.00000000, 2.89996777, 5.88497950}, //La
	58: {0.00000000, 3.07679662, 6.17907722}, //Ce
	59: {0.00000000, 2.96117286, 5.79122304}, //Pr
	60: {0.00000000, 2.99340845, 6.19842164}, //Nd
	61: {0.00000000, 3.05074561, 5.85000200}, //Pm
	62: {0.00000000, 2.91483616, 6.07279639}, //Sm
	63: {0.00000000, 3.10324290, 6.01837163}, //Eu
	64: {0.00000000, 2.89848579, 5.89398505}, //Gd
	65: {0.00000000, 3.08030945, 6.17331869}, //Tb
	66: {0.00000000, 2.95630314, 5.79262975}, //Dy
	67: {0.00000000, 2.99870077, 6.20163664}, //Ho
	68: {0.00000000, 3.04604605, 5.84278211}, //Er
	69: {0.00000000, 2.91804133, 6.08263599}, //Tm
	70: {0.00000000, 3.10214705, 6.00780010}, //Yb
	71: {0.00000000, 1.28767203, 2.62367125, 4.10248025}, //Lu
	72: {0.00000000, 1.37049687, 2.74094188, 3.94811497}, //Hf
	73: {0.00000000, 1.31179760, 2.57536179, 3.99133536}, //Ta
	74: {0.00000000, 1.33510951, 2.75748385, 4.06755194}, //W
	75: {0.00000000, 1.35165748, 2.59376097, 3.88652099}, //Re
	76: {0.00000000, 1.29842445, 2.70767350, 4.13763449}, //Os
	77: {0.00000000, 1.37812948, 2.66542610, 3.86461599}, //Ir
	78: {0.00000000, 1.28724431, 2.62790297, 4.10715933}, //Pt
	79: {0.00000000, 1.37187278, 2.73799760, 3.94162448}, //Au
	80: {0.00000000, 1.30973747, 2.57645375, 3.99839203}, //Hg
	81: {0.00000000, 1.00309395, 2.06884028, 3.04596222}, //Tl
	82: {0.00000000, 1.01210258, 1.94318653, 2.91809966, 4.05520495}, //Pb
	83: {0.00000000, 0.97502284, 2.03388667, 3.10212542}, //Bi
	84: {0.00000000, 1.03305974, 1.99554148}, //Po
	85: {0.00000000, 0.96520039}, //At
	86: {0.00000000}, //Rn
}

//refq holds the partial charges of the reference systems.
var refq = [dftd4.MaxZ + 1][maxRef]float64{
	1: {0.00000000, 0.00000000}, //H
	2: {0.00000000}, //He
	3: {0.00000000, 0.14652695}, //Li
	4: {0.00000000, 0.07441023, 0.15511807}, //Be
	5: {0.00000000, 0.01972971, 0.03788650, 0.05559880}, //B
	6: {0.00000000, -0.04056583, -0.08385437, -0.13018564, -0.17127701}, //C
	7: {0.00000000, -0.10424269, -0.20492788, -0.29474253}, //N
	8: {0.00000000, -0.14469194, -0.28923329}, //O
	9: {0.00000000, -0.21696749}, //F
	10: {0.00000000}, //Ne
	11: {0.00000000, 0.15024486}, //Na
	12: {0.00000000, 0.10962676, 0.21039891}, //Mg
	13: {0.00000000, 0.06841289, 0.14160440, 0.21956485}, //Al
	14: {0.00000000, 0.03724186, 0.07307497, 0.10513709, 0.13980786}, //Si
	15: {0.00000000, 0.00116561, 0.00233514, 0.00365111}, //P
	16: {0.00000000, -0.04638984, -0.09429520}, //S
	17: {0.00000000, -0.11489342}, //Cl
	18: {0.00000000}, //Ar
	19: {0.00000000, 0.16978626}, //K
	20: {0.00000000, 0.13921924, 0.28851720}, //Ca
	21: {0.00000000, 0.13907047, 0.27237908, 0.39206078}, //Sc
	22: {0.00000000, 0.10247062, 0.20573598, 0.32180328}, //Ti
	23: {0.00000000, 0.09291752, 0.18850385, 0.27334575}, //V
	24: {0.00000000, 0.08601832, 0.16681481, 0.25554194}, //Cr
	25: {0.00000000, 0.10287214, 0.21406607, 0.32025159}, //Mn
	26: {0.00000000, 0.06062238, 0.11625746, 0.17161349}, //Fe
	27: {0.00000000, 0.04953094, 0.10276414, 0.15889939}, //Co
	28: {0.00000000, 0.04802013, 0.09388260, 0.13520839}, //Ni
	29: {0.00000000, 0.04653429, 0.09363362, 0.14649811}, //Cu
	30: {0.00000000, 0.08978605, 0.18179118, 0.26328924}, //Zn
	31: {0.00000000, 0.04651159, 0.09033840, 0.13864781}, //Ga
	32: {0.00000000, 0.02259131, 0.04697267, 0.07012764, 0.08968703}, //Ge
	33: {0.00000000, 0.00245451, 0.00470600, 0.00696103}, //As
	34: {0.00000000, -0.04065957, -0.08444580}, //Se
	35: {0.00000000, -0.09439145}, //Br
	36: {0.00000000}, //Kr
	37: {0.00000000, 0.16919485}, //Rb
	38: {0.00000000, 0.14881620, 0.28950987}, //Sr
	39: {0.00000000, 0.15563371, 0.32331047, 0.48169150}, //Y
	40: {0.00000000, 0.14217069, 0.27254771, 0.40399148}, //Zr
	41: {0.00000000, 0.09300961, 0.19335260, 0.29805661}, //Nb
	42: {0.00000000, 0.00662389, 0.01290602, 0.01861343}, //Mo
	43: {0.00000000, 0.04645905, 0.09388589, 0.14692628}, //Tc
	44: {0.00000000, 0.00000000, 0.00000000, 0.00000000}, //Ru
	45: {0.00000000, -0.01267710, -0.02470402, -0.03804967}, //Rh
	46: {0.00000000, 0.00000000, 0.00000000, 0.00000000}, //Pd
	47: {0.00000000, 0.04406034, 0.08446417, 0.12546548}, //Ag
	48: {0.00000000, 0.07912707, 0.16463037, 0.25336666}, //Cd
	49: {0.00000000, 0.05215803, 0.10146104, 0.14645640}, //In
	50: {0.00000000, 0.02785636, 0.05641216, 0.08827768, 0.11891509}, //Sn
	51: {0.00000000, 0.01843853, 0.03710628, 0.05357220}, //Sb
	52: {0.00000000, 0.01186457, 0.02316139}, //Te
	53: {0.00000000, -0.05498165}, //I
	54: {0.00000000}, //Xe
	55: {0.00000000, 0.16422821}, //Cs
	56: {0.00000000, 0.16265359, 0.31591417}, //Ba
	57: {0.00000000, 0.38279575, 0.55000000}, //La
	58: {0.00000000, 0.39875284, 0.55000000}, //Ce
	59: {0.00000000, 0.38021460, 0.55000000}, //Pr
	60: {0.00000000, 0.38076155, 0.55000000}, //Nd
	61: {0.00000000, 0.38439395, 0.55000000}, //Pm
	62: {0.00000000, 0.36027375, 0.55000000}, //Sm
	63: {0.00000000, 0.37983693, 0.55000000}, //Eu
	64: {0.00000000, 0.34781829, 0.55000000}, //Gd
	65: {0.00000000, 0.36594076, 0.55000000}, //Tb
	66: {0.00000000, 0.34766125, 0.55000000}, //Dy
	67: {0.00000000, 0.34904877, 0.55000000}, //Ho
	68: {0.00000000, 0.35090450, 0.55000000}, //Er
	69: {0.00000000, 0.33265671, 0.55000000}, //Tm
	70: {0.00000000, 0.34992219, 0.55000000}, //Yb
	71: {0.00000000, 0.14370420, 0.29280171, 0.45783680}, //Lu
	72: {0.00000000, 0.14801366, 0.29602172, 0.42639642}, //Hf
	73: {0.00000000, 0.11019100, 0.21633039, 0.33527217}, //Ta
	74: {0.00000000, -0.02563410, -0.05294369, -0.07809700}, //W
	75: {0.00000000, 0.04865967, 0.09337539, 0.13991476}, //Re
	76: {0.00000000, 0.00000000, 0.00000000, 0.00000000}, //Os
	77: {0.00000000, 0.00000000, 0.00000000, 0.00000000}, //Ir
	78: {0.00000000, -0.01235755, -0.02522787, -0.03942873}, //Pt
	79: {0.00000000, -0.05597241, -0.11171030, -0.16081828}, //Au
	80: {0.00000000, 0.03143370, 0.06183489, 0.09596141}, //Hg
	81: {0.00000000, 0.06981534, 0.14399128, 0.21199897}, //Tl
	82: {0.00000000, -0.01578880, -0.03031371, -0.04552235, -0.06326120}, //Pb
	83: {0.00000000, 0.02106049, 0.04393195, 0.06700591}, //Bi
	84: {0.00000000, 0.02479343, 0.04789300}, //Po
	85: {0.00000000, 0.00000000}, //At
	86: {0.00000000}, //Rn
}

//refc holds the Gaussian multiplicities of the reference systems.
var refc = [dftd4.MaxZ + 1][maxRef]int{
	1: {1, 3}, //H
	2: {1}, //He
	3: {1, 3}, //Li
	4: {1, 3, 3}, //Be
	5: {1, 3, 3, 3}, //B
	6: {1, 3, 3, 3, 3}, //C
	7: {1, 3, 3, 3}, //N
	8: {1, 3, 3}, //O
	9: {1, 3}, //F
	10: {1}, //Ne
	11: {1, 3}, //Na
	12: {1, 3, 3}, //Mg
	13: {1, 3, 3, 3}, //Al
	14: {1, 3, 3, 3, 3}, //Si
	15: {1, 3, 3, 3}, //P
	16: {1, 3, 3}, //S
	17: {1, 3}, //Cl
	18: {1}, //Ar
	19: {1, 3}, //K
	20: {1, 3, 3}, //Ca
	21: {1, 3, 3, 3}, //Sc
	22: {1, 3, 3, 3}, //Ti
	23: {1, 3, 3, 3}, //V
	24: {1, 3, 3, 3}, //Cr
	25: {1, 3, 3, 3}, //Mn
	26: {1, 3, 3, 3}, //Fe
	27: {1, 3, 3, 3}, //Co
	28: {1, 3, 3, 3}, //Ni
	29: {1, 3, 3, 3}, //Cu
	30: {1, 3, 3, 3}, //Zn
	31: {1, 3, 3, 3}, //Ga
	32: {1, 3, 3, 3, 3}, //Ge
	33: {1, 3, 3, 3}, //As
	34: {1, 3, 3}, //Se
	35: {1, 3}, //Br
	36: {1}, //Kr
	37: {1, 3}, //Rb
	38: {1, 3, 3}, //Sr
	39: {1, 3, 3, 3}, //Y
	40: {1, 3, 3, 3}, //Zr
	41: {1, 3, 3, 3}, //Nb
	42: {1, 3, 3, 3}, //Mo
	43: {1, 3, 3, 3}, //Tc
	44: {1, 3, 3, 3}, //Ru
	45: {1, 3, 3, 3}, //Rh
	46: {1, 3, 3, 3}, //Pd
	47: {1, 3, 3, 3}, //Ag
	48: {1, 3, 3, 3}, //Cd
	49: {1, 3, 3, 3}, //In
	50: {1, 3, 3, 3, 3}, //Sn
	51: {1, 3, 3, 3}, //Sb
	52: {1, 3, 3}, //Te
	53: {1, 3}, //I
	54: {1}, //Xe
	55: {1, 3}, //Cs
	56: {1, 3, 3}, //Ba
	57: {1, 3, 3}, //La
	58: {1, 3, 3}, //Ce
	59: {1, 3, 3}, //Pr
	60: {1, 3, 3}, //Nd
	61: {1, 3, 3}, //Pm
	62: {1, 3, 3}, //Sm
	63: {1, 3, 3}, //Eu
	64: {1, 3, 3}, //Gd
	65: {1, 3, 3}, //Tb
	66: {1, 3, 3}, //Dy
	67: {1, 3, 3}, //Ho
	68: {1, 3, 3}, //Er
	69: {1, 3, 3}, //Tm
	70: {1, 3, 3}, //Yb
	71: {1, 3, 3, 3}, //Lu
	72: {1, 3, 3, 3}, //Hf
	73: {1, 3, 3, 3}, //Ta
	74: {1, 3, 3, 3}, //W
	75: {1, 3, 3, 3}, //Re
	76: {1, 3, 3, 3}, //Os
	77: {1, 3, 3, 3}, //Ir
	78: {1, 3, 3, 3}, //Pt
	79: {1, 3, 3, 3}, //Au
	80: {1, 3, 3, 3}, //Hg
	81: {1, 3, 3, 3}, //Tl
	82: {1, 3, 3, 3, 3}, //Pb
	83: {1, 3, 3, 3}, //Bi
	84: {1, 3, 3}, //Po
	85: {1, 3}, //At
	86: {1}, //Rn
}

//refalpha holds the static polarizabilities of the reference systems, a.u.
var refalpha = [dftd4.MaxZ + 1][maxRef]float64{
	1: {4.57653930, 3.15496323}, //H
	2: {1.40469624}, //He
	3: {164.49891761, 110.94833391}, //Li
	4: {37.09753781, 30.56019080, 26.27033164}, //Be
	5: {20.11799608, 17.93275861, 16.07365583, 14.09525677}, //B
	6: {11.25902866, 10.39606139, 9.21339574, 8.21431892, 7.79707474}, //C
	7: {7.50966395, 6.47933496, 5.56999676, 5.10872450}, //N
	8: {5.40185616, 4.31393467, 3.62405118}, //O
	9: {3.76019980, 2.51595002}, //F
	10: {2.62399573}, //Ne
	11: {159.50418231, 113.40753507}, //Na
	12: {70.69224390, 58.96618180, 49.43746649}, //Mg
	13: {58.50163713, 51.19964884, 43.75883108, 39.04957071}, //Al
	14: {38.04240313, 33.26086133, 29.79661061, 28.33785354, 26.38270020}, //Si
	15: {25.22006474, 21.40734196, 19.27558448, 17.50825975}, //P
	16: {19.19354753, 15.54306109, 13.43337070}, //S
	17: {14.30800734, 10.10467300}, //Cl
	18: {10.96476033}, //Ar
	19: {293.23177734, 202.13810297}, //K
	20: {164.00464486, 131.95145422, 108.65169044}, //Ca
	21: {98.15550708, 82.50063779, 73.83549207, 68.78248225}, //Sc
	22: {99.26043546, 85.76851630, 78.30586808, 69.61798223}, //Ti
	23: {85.28663856, 75.39738649, 67.73383559, 59.76426340}, //V
	24: {81.89400046, 73.40757729, 64.94444797, 56.40975815}, //Cr
	25: {68.38580023, 60.29707803, 51.41837206, 45.78861689}, //Mn
	26: {63.19627337, 53.89157441, 46.93448785, 43.31518375}, //Fe
	27: {55.80451340, 47.29014243, 41.82252395, 38.21059822}, //Co
	28: {48.80868848, 41.61180334, 37.92142649, 34.66541427}, //Ni
	29: {45.62880098, 40.41271657, 36.68981267, 31.87803165}, //Cu
	30: {38.08821899, 34.03945507, 29.90393635, 26.24938274}, //Zn
	31: {50.10513429, 44.35967740, 38.49744441, 34.00692196}, //Ga
	32: {40.72082585, 36.21440514, 31.83576213, 29.68088342, 28.28226045}, //Ge
	33: {30.50573484, 25.67582966, 22.86761971, 21.24646997}, //As
	34: {28.89180402, 23.26119729, 20.00540303}, //Se
	35: {20.63971945, 14.21278700}, //Br
	36: {16.50150765}, //Kr
	37: {318.30973510, 222.75263391}, //Rb
	38: {200.38465201, 162.76401339, 134.93082942}, //Sr
	39: {165.00177344, 139.61718858, 121.75268968, 112.44752565}, //Y
	40: {112.37481020, 95.18000658, 86.72994264, 79.55369728}, //Zr
	41: {96.52917600, 84.60883067, 76.60856278, 67.30062963}, //Nb
	42: {85.33502081, 75.92809179, 67.93210543, 59.81035708}, //Mo
	43: {78.59493456, 70.35255226, 61.08068460, 53.06738902}, //Tc
	44: {72.98948599, 63.20982087, 54.04974857, 49.33995333}, //Ru
	45: {67.29274405, 57.08784518, 50.26627153, 46.15529302}, //Rh
	46: {26.27919561, 22.26936867, 19.89427732, 18.23137548}, //Pd
	47: {54.32002311, 47.03448334, 43.20675068, 38.68890507}, //Ag
	48: {45.08580739, 40.35092587, 35.97144941, 31.08236790}, //Cd
	49: {64.44444158, 57.33660585, 50.10630331, 44.36428974}, //In
	50: {53.57668919, 48.52724291, 42.78670247, 38.95984992, 36.83195055}, //Sn
	51: {43.85980546, 37.16111099, 32.21265162, 29.96465301}, //Sb
	52: {38.38598167, 30.51307824, 26.35066895}, //Te
	53: {32.59375683, 22.34599902}, //I
	54: {26.75533250}, //Xe
	55: {396.31493961, 284.00970876}, //Cs
	56: {274.08308419, 224.45961181, 185.03508617}, //Ba
	57: {219.24437179, 176.70410072, 146.19415287}, //La
	58: {207.68805690, 163.78793967, 138.84654615}, //Ce
	59: {214.71589944, 173.53504431, 152.19211895}, //Pr
	60: {203.97157255, 169.44775196, 144.83076027}, //Nd
	61: {197.11347217, 165.29700609, 140.45737483}, //Pm
	62: {192.80295661, 160.52709220, 130.72441232}, //Sm
	63: {187.46523900, 149.89492708, 124.24969631}, //Eu
	64: {160.47001106, 127.91930829, 108.25961513}, //Gd
	65: {169.59463490, 135.41955725, 117.05719571}, //Tb
	66: {160.04287916, 132.61618546, 115.87014051}, //Dy
	67: {153.39424875, 129.02036654, 107.89590279}, //Ho
	68: {150.08507079, 124.51659176, 103.70639745}, //Er
	69: {146.49123620, 119.05619620, 96.98010795}, //Tm
	70: {141.45132171, 111.45304334, 94.42062932}, //Yb
	71: {137.17192567, 117.27693956, 106.18940153, 95.51416017}, //Lu
	72: {101.31955242, 88.40463232, 80.19922448, 71.64561776}, //Hf
	73: {72.63685579, 65.13481452, 58.28405645, 50.34496300}, //Ta
	74: {67.79147231, 60.30220388, 51.79155918, 45.74436099}, //W
	75: {62.94204947, 54.40527043, 47.13057047, 42.86677935}, //Re
	76: {58.08604332, 49.31309049, 42.95416826, 39.39405914}, //Os
	77: {54.26204988, 45.82288329, 41.55399012, 38.38181455}, //Ir
	78: {47.33051907, 41.40752627, 37.68261962, 33.09309984}, //Pt
	79: {35.29700178, 31.39885908, 28.01163390, 24.65669327}, //Au
	80: {33.67630481, 30.12477310, 26.32297196, 22.91519995}, //Hg
	81: {50.62924478, 44.06017935, 37.54259423, 33.98893770}, //Tl
	82: {47.93247716, 41.98202124, 37.85367693, 35.73201043, 32.79199481}, //Pb
	83: {48.39791024, 41.07500198, 36.65556521, 33.41200592}, //Bi
	84: {43.51081731, 35.16412569, 30.82123414}, //Po
	85: {41.16052779, 29.37774905}, //At
	86: {34.65307683}, //Rn
}

//refeta holds the effective (London) frequencies of the reference
//systems, in Hartree. A reference's dynamic polarizability on the
//imaginary axis is alpha0/(1+(w/eta)^2).
var refeta = [dftd4.MaxZ + 1][maxRef]float64{
	1: {0.42825048, 0.45565305}, //H
	2: {1.02092021}, //He
	3: {0.06901660, 0.07354703}, //Li
	4: {0.21242310, 0.22379419, 0.23376745}, //Be
	5: {0.31666279, 0.32087277, 0.32743354, 0.33831551}, //B
	6: {0.48479250, 0.50106848, 0.51349342, 0.51971594, 0.52176716}, //C
	7: {0.59177502, 0.59957531, 0.61195358, 0.63118768}, //N
	8: {0.73684905, 0.77641924, 0.80996488}, //O
	9: {0.91053080, 0.97054981}, //F
	10: {1.19496742}, //Ne
	11: {0.07889351, 0.08390070}, //Na
	12: {0.16450911, 0.17374470, 0.18143081}, //Mg
	13: {0.21235248, 0.21471795, 0.21865569, 0.22599414}, //Al
	14: {0.28988350, 0.30015763, 0.30867008, 0.31244090, 0.31370941}, //Si
	15: {0.39812511, 0.40265874, 0.40903711, 0.42225360}, //P
	16: {0.47032610, 0.49647360, 0.52148515}, //S
	17: {0.59749672, 0.63617580}, //Cl
	18: {0.69121519}, //Ar
	19: {0.06218450, 0.06636754}, //K
	20: {0.11325907, 0.11925662, 0.12541491}, //Ca
	21: {0.12050785, 0.12219361, 0.12387579, 0.12676949}, //Sc
	22: {0.12227582, 0.12711074, 0.13190281, 0.13555067}, //Ti
	23: {0.12992956, 0.13175761, 0.13367541, 0.13676366}, //V
	24: {0.13128873, 0.13649882, 0.14157767, 0.14540721}, //Cr
	25: {0.13935363, 0.14128732, 0.14334191, 0.14680526}, //Mn
	26: {0.14030079, 0.14588768, 0.15141284, 0.15533449}, //Fe
	27: {0.14877703, 0.15085622, 0.15286553, 0.15666757}, //Co
	28: {0.14931506, 0.15519724, 0.16134520, 0.16552837}, //Ni
	29: {0.15819665, 0.16053505, 0.16237038, 0.16623973}, //Cu
	30: {0.20184722, 0.20955710, 0.21825380, 0.22435847}, //Zn
	31: {0.26942727, 0.27380598, 0.27653915, 0.28232604}, //Ga
	32: {0.29070165, 0.29937957, 0.31001281, 0.31782162, 0.32038105}, //Ge
	33: {0.36980405, 0.37642783, 0.38012367, 0.38675229}, //As
	34: {0.33027792, 0.34612490, 0.36521097}, //Se
	35: {0.49709428, 0.53385213}, //Br
	36: {0.60308599}, //Kr
	37: {0.06246408, 0.06708410}, //Rb
	38: {0.10705839, 0.11207223, 0.11779497}, //Sr
	39: {0.13576302, 0.13849983, 0.14033302, 0.14258638}, //Y
	40: {0.15645772, 0.16164809, 0.16794999, 0.17361879}, //Zr
	41: {0.18663411, 0.19048620, 0.19293339, 0.19625251}, //Nb
	42: {0.20588505, 0.21255037, 0.22103573, 0.22838675}, //Mo
	43: {0.23746954, 0.24263682, 0.24547364, 0.24959085}, //Tc
	44: {0.25535561, 0.26323486, 0.27406094, 0.28357606}, //Ru
	45: {0.28825426, 0.29503736, 0.29823536, 0.30255263}, //Rh
	46: {0.30488421, 0.31368438, 0.32669476, 0.33899705}, //Pd
	47: {0.15284024, 0.15673951, 0.15849597, 0.16031121}, //Ag
	48: {0.29148880, 0.29935017, 0.31144228, 0.32404378}, //Cd
	49: {0.24913058, 0.25588680, 0.25918339, 0.26162894}, //In
	50: {0.30870645, 0.31463776, 0.32467035, 0.33594317, 0.34340774}, //Sn
	51: {0.35932214, 0.36940175, 0.37496872, 0.37852166}, //Sb
	52: {0.36109963, 0.37487822, 0.39292320}, //Te
	53: {0.47998329, 0.51921114}, //I
	54: {0.50549002}, //Xe
	55: {0.05744969, 0.06210002}, //Cs
	56: {0.10208762, 0.10591777, 0.11096747}, //Ba
	57: {0.10317570, 0.10761588, 0.11071920}, //La
	58: {0.09999619, 0.10359183, 0.10867004}, //Ce
	59: {0.10085388, 0.10539423, 0.10832478}, //Pr
	60: {0.09790763, 0.10120636, 0.10620224}, //Nd
	61: {0.09852973, 0.10319509, 0.10612562}, //Pm
	62: {0.09582086, 0.09884290, 0.10355859}, //Sm
	63: {0.09620435, 0.10093197, 0.10405322}, //Eu
	64: {0.09373479, 0.09657149, 0.10086718}, //Gd
	65: {0.09387881, 0.09856048, 0.10194335}, //Tb
	66: {0.09164835, 0.09440045, 0.09829205}, //Dy
	67: {0.09155413, 0.09610883, 0.09965792}, //Ho
	68: {0.08956054, 0.09227263, 0.09591413}, //Er
	69: {0.08923133, 0.09365487, 0.09718284}, //Tm
	70: {0.08747037, 0.09010880, 0.09367744}, //Yb
	71: {0.08691135, 0.09013696, 0.09233087, 0.09371281}, //Lu
	72: {0.09330019, 0.09475499, 0.09739072, 0.10089699}, //Hf
	73: {0.12292670, 0.12764147, 0.13072058, 0.13260261}, //Ta
	74: {0.15181560, 0.15397266, 0.15822259, 0.16413124}, //W
	75: {0.18202871, 0.18927931, 0.19399152, 0.19646329}, //Re
	76: {0.21203760, 0.21477020, 0.22038063, 0.22896529}, //Os
	77: {0.24176182, 0.25166267, 0.25845007, 0.26147365}, //Ir
	78: {0.27240874, 0.27572183, 0.28221872, 0.29326535}, //Pt
	79: {0.30592339, 0.31856396, 0.32802787, 0.33215198}, //Au
	80: {0.45606558, 0.46162798, 0.47127868, 0.48880559}, //Hg
	81: {0.38110678, 0.39673965, 0.40942629, 0.41569764}, //Tl
	82: {0.42238035, 0.42492081, 0.43058142, 0.44259035, 0.45861624}, //Pb
	83: {0.32892494, 0.34226620, 0.35355059, 0.36011978}, //Bi
	84: {0.37460250, 0.38456125, 0.39640320}, //Po
	85: {0.41252060, 0.45076590}, //At
	86: {0.46003486}, //Rn
}

